package handlers

import (
	"html/template"
	"net/http"

	"legalease/utils"

	"github.com/gin-gonic/gin"
)

// Fixed frame image layout: 600x400 SVG, one of six visual states.
const ogImageSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="600" height="400" viewBox="0 0 600 400">
  <rect width="600" height="400" fill="#f0f1f4"/>
  <circle cx="300" cy="110" r="44" fill="{{.Accent}}"/>
  <text x="300" y="124" font-family="sans-serif" font-size="40" text-anchor="middle">{{.Icon}}</text>
  <text x="300" y="200" font-family="sans-serif" font-size="28" font-weight="600" fill="#2b2f38" text-anchor="middle">{{.Title}}</text>
  <text x="300" y="245" font-family="sans-serif" font-size="16" fill="#5a6070" text-anchor="middle">{{.Line1}}</text>
  <text x="300" y="275" font-family="sans-serif" font-size="16" fill="#5a6070" text-anchor="middle">{{.Line2}}</text>
  <text x="300" y="360" font-family="sans-serif" font-size="13" fill="#8a8f9c" text-anchor="middle">LegalEase Frame</text>
</svg>`

var ogImageTmpl = template.Must(template.New("og").Parse(ogImageSVG))

type ogImageData struct {
	Accent string
	Icon   string
	Title  string
	Line1  string
	Line2  string
}

// ogStates maps the frame state to its fixed layout content. Dynamic text
// (advice summary, error message) overlays Line1/Line2.
var ogStates = map[string]ogImageData{
	"welcome": {
		Accent: "#3b6fd4",
		Icon:   "§",
		Title:  "LegalEase Frame",
		Line1:  "Understand your rights, act with confidence",
		Line2:  "Plain-language legal information",
	},
	"query": {
		Accent: "#3b6fd4",
		Icon:   "?",
		Title:  "Ask a Legal Question",
		Line1:  "Describe your situation in plain language",
		Line2:  "10 to 500 characters",
	},
	"advice": {
		Accent: "#51b576",
		Icon:   "✓",
		Title:  "Legal Advice Generated",
		Line1:  "Your answer is ready",
		Line2:  "",
	},
	"templates": {
		Accent: "#8a5fd4",
		Icon:   "≡",
		Title:  "Legal Document Templates",
		Line1:  "Demand letters, lease notices, complaints",
		Line2:  "Generated for your jurisdiction",
	},
	"payment": {
		Accent: "#d49a3b",
		Icon:   "$",
		Title:  "Premium Services",
		Line1:  "Document analysis and custom templates",
		Line2:  "Micro-payments on Base",
	},
	"error": {
		Accent: "#d45b5b",
		Icon:   "!",
		Title:  "Something Went Wrong",
		Line1:  "Please try again",
		Line2:  "",
	},
}

// OGImageHandler serves GET /api/og/:state as an SVG frame image.
func OGImageHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		state := c.Param("state")
		data, ok := ogStates[state]
		if !ok {
			utils.JSONError(c, http.StatusNotFound, utils.CodeValidationError, "Unknown image state")
			return
		}

		switch state {
		case "advice":
			if summary := c.Query("summary"); summary != "" {
				data.Line1 = utils.TruncateText(utils.SanitizeInput(summary, 200), 70)
			}
		case "error":
			if message := c.Query("message"); message != "" {
				data.Line1 = utils.TruncateText(utils.SanitizeInput(message, 200), 70)
			}
		}

		c.Header("Content-Type", "image/svg+xml")
		c.Header("Cache-Control", "public, max-age=300")
		c.Status(http.StatusOK)
		if err := ogImageTmpl.Execute(c.Writer, data); err != nil {
			utils.GetLogger().Error("og image render failed")
		}
	}
}
