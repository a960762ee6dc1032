package v1

import (
	"embed"
	"html/template"
	"io"
	"net/url"

	"github.com/Egor213/LogDesk/internal/controller/http/validators"
	"github.com/Egor213/LogDesk/internal/domain"
	"github.com/Egor213/LogDesk/internal/service"
)

//go:embed templates/admin.html
var templateFiles embed.FS

const pageTitle = "Debug Log"

var adminPage = template.Must(template.ParseFS(templateFiles, "templates/admin.html"))

type banner struct {
	Class   string
	Message string
}

// screenView holds plain strings only. Every value is escaped by html/template
// for the context it lands in, so no field may be typed template.HTML/JS/URL.
// A non-empty ReadError replaces both the content and the no-file placeholder.
type screenView struct {
	Title         string
	Banner        *banner
	ReadError     string
	HasLog        bool
	Content       string
	Placeholder   string
	DeleteURL     string
	AppendURL     string
	ConfirmDelete string
}

func newScreenView(basePath string, content domain.LogContent, readFailed bool, result *domain.ActionResult, deleteToken, appendToken string) screenView {
	v := screenView{
		Title:         pageTitle,
		HasLog:        content.Exists,
		Content:       string(content.Data),
		Placeholder:   service.MsgNoDebugFile,
		DeleteURL:     actionURL(basePath, validators.ParamDelete, deleteToken),
		AppendURL:     actionURL(basePath, validators.ParamAppendTestEntry, appendToken),
		ConfirmDelete: service.MsgConfirmDelete,
	}

	if readFailed {
		v.HasLog = false
		v.Content = ""
		v.ReadError = service.MsgCannotRead
	}

	if result != nil {
		v.Banner = &banner{Class: bannerClass(result.Status), Message: result.Message}
	}

	return v
}

func bannerClass(status domain.ActionStatus) string {
	if status == domain.StatusOK {
		return "updated"
	}
	return "error"
}

func actionURL(basePath, param, tok string) string {
	q := url.Values{}
	q.Set(param, tok)
	return basePath + "?" + q.Encode()
}

func renderScreen(w io.Writer, v screenView) error {
	return adminPage.Execute(w, v)
}
