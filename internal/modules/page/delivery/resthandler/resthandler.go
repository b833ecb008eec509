package resthandler

import (
	"path/filepath"

	"github.com/labstack/echo"
)

// pages route path to html file under public dir
var pages = map[string]string{
	"/":           "sign.html",
	"/login":      "login.html",
	"/teacher":    "teacher.html",
	"/student":    "student.html",
	"/events":     "past-event.html",
	"/verify":     "verify.html",
	"/feedback":   "feedback.html",
	"/attendance": "attendance.html",
}

// RestHandler handler
type RestHandler struct {
	publicDir string
}

// NewRestHandler create new rest handler
func NewRestHandler(publicDir string) *RestHandler {
	return &RestHandler{publicDir: publicDir}
}

// Mount handler with root "/"
func (h *RestHandler) Mount(root *echo.Group) {
	// static must be registered first, it also claims GET "/"
	root.Static("/", h.publicDir)
	for path, file := range pages {
		root.GET(path, h.servePage(file))
	}
}

func (h *RestHandler) servePage(file string) echo.HandlerFunc {
	name := filepath.Join(h.publicDir, file)
	return func(c echo.Context) error {
		return c.File(name)
	}
}
