package handlers

import (
	"bytes"
	"errors"
	"html/template"
	"net/http"

	"curio/internal/config"
	"curio/internal/mapper"
	"curio/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"
)

// previewTemplate renders a minimal public page for one item with the
// metadata link unfurlers and the App Clip need.
const previewTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<meta property="og:type" content="website">
<meta property="og:title" content="{{.Title}}">
<meta property="og:description" content="{{.Description}}">
<meta property="og:url" content="{{.URL}}">
{{if .Image}}<meta property="og:image" content="{{.Image}}">{{end}}
<meta name="twitter:card" content="summary_large_image">
<meta name="twitter:title" content="{{.Title}}">
<meta name="twitter:description" content="{{.Description}}">
{{if .AppClipID}}<meta name="apple-itunes-app" content="app-id={{.AppClipID}}, app-clip-bundle-id={{.AppClipID}}.Clip, app-clip-display=card">{{end}}
</head>
<body>
<main>
<h1>{{.Title}}</h1>
<p>{{.Description}}</p>
{{if .Image}}<img src="{{.Image}}" alt="{{.Title}}">{{end}}
</main>
</body>
</html>
`

const previewNotFound = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="utf-8"><title>Not found</title></head>
<body><main><h1>This item does not exist or is private.</h1></main></body>
</html>
`

type PreviewHandler struct {
	itemService   services.ItemService
	fileService   services.FileService
	configuration *config.Configuration
	template      *template.Template
	log           *logrus.Logger
}

func NewPreviewHandler(
	itemService services.ItemService,
	fileService services.FileService,
	configuration *config.Configuration,
	logService services.LogService,
) *PreviewHandler {
	return &PreviewHandler{
		itemService:   itemService,
		fileService:   fileService,
		configuration: configuration,
		template:      template.Must(template.New("preview").Parse(previewTemplate)),
		log:           logService.Log,
	}
}

// Show renders the public preview page. Visibility follows the same rule
// as the JSON API, but anonymous callers get a 404 page for private items
// instead of a 401 so the HTML surface does not leak item existence.
func (h *PreviewHandler) Show(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)

	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.Status(http.StatusNotFound).SendString(previewNotFound)
	}
	item, err := h.itemService.GetItemForCaller(id, CallerClaims(c))
	if err != nil {
		if errors.Is(err, services.ErrNotFound) ||
			errors.Is(err, services.ErrUnauthorized) ||
			errors.Is(err, services.ErrForbidden) {
			return c.Status(http.StatusNotFound).SendString(previewNotFound)
		}
		h.log.WithFields(logrus.Fields{"path": c.Path(), "error": err.Error()}).Error("preview failed")
		return c.SendStatus(http.StatusInternalServerError)
	}

	itemDTO, err := mapper.ToItemDTO(item, h.fileService.ResolveImageRefs)
	if err != nil {
		h.log.WithFields(logrus.Fields{"path": c.Path(), "error": err.Error()}).Error("preview failed")
		return c.SendStatus(http.StatusInternalServerError)
	}

	data := struct {
		Title       string
		Description string
		URL         string
		Image       string
		AppClipID   string
	}{
		Title:       itemDTO.Title,
		Description: itemDTO.Description,
		URL:         c.BaseURL() + c.OriginalURL(),
		AppClipID:   h.configuration.Server.AppClipID,
	}
	if len(itemDTO.Images) > 0 {
		data.Image = itemDTO.Images[0]
	}

	var buf bytes.Buffer
	if err := h.template.Execute(&buf, data); err != nil {
		h.log.WithFields(logrus.Fields{"path": c.Path(), "error": err.Error()}).Error("preview failed")
		return c.SendStatus(http.StatusInternalServerError)
	}
	return c.Send(buf.Bytes())
}
