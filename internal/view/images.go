package view

import (
	"net/url"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"github.com/unclebandit/campaign-dashboard/internal/model"
	"github.com/unclebandit/campaign-dashboard/internal/service"
)

func ImagesPage(p PageProps, images []model.Image, search string) g.Node {
	p.Title, p.Active = "Images", "images"
	return Page(p,
		heading("Images"),
		h.Div(h.Class("mb-6 flex flex-wrap items-end gap-4"),
			h.Form(h.Method("post"), h.Action("/images"), h.EncType("multipart/form-data"), h.Class("flex items-end gap-2"),
				h.Input(h.Type("file"), h.Name("image"), h.Accept("image/*"), h.Required()),
				submit("Upload"),
			),
			h.Form(h.Method("get"), h.Action("/images"), h.Class("ml-auto"),
				h.Input(h.Type("search"), h.Name("search"), h.Value(search), h.Placeholder("Search images"), h.Class(inputClass)),
			),
		),
		g.If(len(images) == 0, empty("No images found.")),
		h.Div(h.Class("grid grid-cols-2 gap-4 md:grid-cols-4"),
			g.Map(images, func(img model.Image) g.Node {
				return h.Div(h.Class("rounded-lg border bg-white p-2"),
					h.Img(h.Src(img.URL), h.Alt(img.Name), h.Class("mb-2 h-32 w-full object-cover rounded")),
					h.P(h.Class("truncate text-sm font-medium"), g.Text(img.Name)),
					h.P(h.Class("text-xs text-gray-500"), g.Text(service.FormatSize(img.Size))),
					h.Input(h.Type("text"), h.ReadOnly(), h.Value(img.URL), h.Class("mt-1 w-full rounded border px-1 text-xs")),
					postButton("/images/"+url.PathEscape(img.Name)+"/delete", "Delete", "danger"),
				)
			}),
		),
	)
}
