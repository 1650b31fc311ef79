package controller

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/unclebandit/campaign-dashboard/internal/view"
)

func (c *Controller) ListImages(w http.ResponseWriter, r *http.Request) {
	search := r.URL.Query().Get("search")
	images, err := c.Images.List(r.Context(), search)
	if err != nil {
		c.failPage(w, r, err, "Failed to load images")
		return
	}
	c.render(w, http.StatusOK, view.ImagesPage(c.props(w, r), images, search))
}

func (c *Controller) UploadImage(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	file, header, err := r.FormFile("image")
	if err != nil {
		c.Sessions.FlashError(w, r, "Please choose an image to upload")
		c.redirect(w, r, "/images")
		return
	}
	defer file.Close()

	if _, err := c.Images.Upload(r.Context(), header.Filename, file); err != nil {
		c.fail(w, r, err, "/images", "Failed to upload image")
		return
	}
	c.Sessions.FlashSuccess(w, r, "Image uploaded")
	c.redirect(w, r, "/images")
}

func (c *Controller) DeleteImage(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "filename")
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}
	if err := c.Images.Delete(r.Context(), name); err != nil {
		c.fail(w, r, err, "/images", "Failed to delete image")
		return
	}
	c.Sessions.FlashSuccess(w, r, "Image deleted")
	c.redirect(w, r, "/images")
}
