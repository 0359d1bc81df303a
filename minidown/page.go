package minidown

import (
	"fmt"
	"html/template"
	"io"
	"os"
	"strings"
)

const defaultPageTemplate = `<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>{{.Title}}</title>
    <style>{{.CSS}}</style>
</head>
<body>
{{.Body}}
</body>
</html>
`

// DefaultCSS is embedded into standalone pages unless overridden.
const DefaultCSS = `
body {
  font-family: sans-serif;
  font-size: 16px;
  max-width: 680px;
  margin: 30px auto 0 auto;
}
h1, h2, h3, h4, h5, h6 {
  margin-bottom: 0.5em;
}
h1 {
  text-align: center;
}
h2 {
  border-bottom: 3px black solid;
}
a:hover {
  opacity: 0.5;
}
p {
  margin: 0 auto 0.5em auto;
}
`

// PageRenderer wraps converted HTML in a standalone document before writing it.
type PageRenderer struct {
	W        io.Writer
	Template *template.Template
	CSS      string
}

// NewPageRenderer creates a PageRenderer. An empty templatePath selects the
// built-in template and an empty cssPath selects DefaultCSS.
func NewPageRenderer(w io.Writer, templatePath, cssPath string) (*PageRenderer, error) {
	tpl := template.New("page")
	var err error
	if templatePath == "" {
		tpl, err = tpl.Parse(defaultPageTemplate)
	} else {
		tpl, err = template.ParseFiles(templatePath)
	}
	if err != nil {
		return nil, fmt.Errorf("parse page template: %w", err)
	}

	css := DefaultCSS
	if cssPath != "" {
		data, err := os.ReadFile(cssPath)
		if err != nil {
			return nil, fmt.Errorf("read stylesheet: %w", err)
		}
		css = string(data)
	}

	return &PageRenderer{W: w, Template: tpl, CSS: css}, nil
}

func (r *PageRenderer) Display(html string) error {
	data := struct {
		Title string
		CSS   template.CSS
		Body  template.HTML
	}{
		Title: ExtractTitle(html),
		CSS:   template.CSS(r.CSS),
		Body:  template.HTML(html),
	}
	if err := r.Template.Execute(r.W, data); err != nil {
		return fmt.Errorf("execute page template: %w", err)
	}
	return nil
}

// ExtractTitle returns the text of the first <h1> element, or "".
func ExtractTitle(html string) string {
	start := strings.Index(html, "<h1>")
	if start == -1 {
		return ""
	}
	rest := html[start+len("<h1>"):]
	end := strings.Index(rest, "</h1>")
	if end == -1 {
		return ""
	}
	return strings.TrimSpace(rest[:end])
}
