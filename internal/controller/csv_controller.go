package controller

import (
	"net/http"
	"strconv"

	"github.com/unclebandit/campaign-dashboard/internal/form"
	"github.com/unclebandit/campaign-dashboard/internal/view"
)

// maxUploadSize bounds multipart bodies for list and image uploads.
const maxUploadSize = 32 << 20

func (c *Controller) ListCsvFiles(w http.ResponseWriter, r *http.Request) {
	files, err := c.CSV.List(r.Context(), r.URL.Query().Get("filtered"))
	if err != nil {
		c.failPage(w, r, err, "Failed to load contact lists")
		return
	}
	c.render(w, http.StatusOK, view.CsvFilesPage(c.props(w, r), files))
}

func (c *Controller) UploadCsvFile(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	file, header, err := r.FormFile("file")
	if err != nil {
		c.Sessions.FlashError(w, r, "Please choose a CSV file to upload")
		c.redirect(w, r, "/csv-files")
		return
	}
	defer file.Close()

	uploaded, err := c.CSV.Upload(r.Context(), header.Filename, r.FormValue("name"), file)
	if err != nil {
		c.fail(w, r, err, "/csv-files", "Failed to upload file")
		return
	}
	c.Logger.Info("Contact list uploaded", "csv_file_id", uploaded.ID, "filename", header.Filename)
	c.Sessions.FlashSuccess(w, r, "File uploaded")
	c.redirect(w, r, "/csv-files/"+uploaded.ID)
}

func (c *Controller) ShowCsvFile(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	d, err := c.CSV.Detail(r.Context(), idParam(r), page)
	if err != nil {
		c.failPage(w, r, err, "Failed to load contact list")
		return
	}
	c.render(w, http.StatusOK, view.CsvFilePage(c.props(w, r), d))
}

func (c *Controller) FilterCsvFile(w http.ResponseWriter, r *http.Request) {
	id := idParam(r)
	f := form.CsvFilter{
		Name:         r.FormValue("name"),
		Countries:    formValues(r, "countries"),
		Timezones:    formValues(r, "timezones"),
		EmailDomains: formValues(r, "email_domains"),
	}
	filtered, err := c.CSV.Filter(r.Context(), id, f)
	if err != nil {
		c.fail(w, r, err, "/csv-files/"+id, "Failed to filter contacts")
		return
	}
	c.Sessions.FlashSuccess(w, r, "Filtered list created")
	c.redirect(w, r, "/csv-files/"+filtered.ID)
}

func (c *Controller) DeleteCsvFile(w http.ResponseWriter, r *http.Request) {
	if err := c.CSV.Delete(r.Context(), idParam(r)); err != nil {
		c.fail(w, r, err, "/csv-files", "Failed to delete file")
		return
	}
	c.Sessions.FlashSuccess(w, r, "File deleted")
	c.redirect(w, r, "/csv-files")
}
