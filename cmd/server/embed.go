//go:build embed
// +build embed

package main

import (
	"embed"
	"io"
	"io/fs"
	"log"
	"net/http"
	"path"
	"strings"

	"github.com/gin-gonic/gin"
)

//go:embed web
var webFS embed.FS

// Kiosk pages served at clean URLs.
var pageFiles = map[string]string{
	"/":           "index.html",
	"/navigate":   "navigate.html",
	"/admin":      "admin.html",
	"/map-editor": "map-editor.html",
	"/login":      "login.html",
}

// setupStaticFiles serves the embedded kiosk frontend
func setupStaticFiles(router *gin.Engine) {
	log.Println("📦 Using embedded frontend assets")

	siteFS, err := fs.Sub(webFS, "web")
	if err != nil {
		log.Fatalf("Failed to get web subdirectory: %v", err)
	}

	router.NoRoute(func(c *gin.Context) {
		urlPath := c.Request.URL.Path

		// API routes are handled above; an unmatched /api path is a 404.
		if strings.HasPrefix(urlPath, "/api") {
			c.JSON(404, gin.H{"error": "API endpoint not found"})
			return
		}

		cleanPath := path.Clean(urlPath)
		if page, ok := pageFiles[cleanPath]; ok {
			serveFile(c, siteFS, page)
			return
		}

		// Static assets (css/js/images) under /static
		serveFile(c, siteFS, strings.TrimPrefix(cleanPath, "/"))
	})
}

func serveFile(c *gin.Context, siteFS fs.FS, name string) {
	file, err := siteFS.Open(name)
	if err != nil {
		c.String(http.StatusNotFound, "404 page not found")
		return
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil || stat.IsDir() {
		c.String(http.StatusNotFound, "404 page not found")
		return
	}

	content, err := io.ReadAll(file)
	if err != nil {
		c.String(http.StatusInternalServerError, "Error reading "+name)
		return
	}

	contentType := "text/html; charset=utf-8"
	switch path.Ext(name) {
	case ".js":
		contentType = "application/javascript; charset=utf-8"
	case ".css":
		contentType = "text/css; charset=utf-8"
	case ".json":
		contentType = "application/json; charset=utf-8"
	case ".png":
		contentType = "image/png"
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".svg":
		contentType = "image/svg+xml"
	case ".ico":
		contentType = "image/x-icon"
	}
	c.Data(http.StatusOK, contentType, content)
}
