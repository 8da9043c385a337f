package site

import (
	"bytes"
	"fmt"
	"html/template"

	"lecturectl/pkg/courses"
)

var indexTemplate = template.Must(template.New("index").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <link rel="stylesheet" href="styles.css">
</head>
<body>
    <header>
        <h1>{{.Title}}</h1>
        <input type="text" id="searchInput" placeholder="Search lectures...">
    </header>

    <nav class="tabs">
{{- range $i, $c := .Courses}}
        <button class="tab-btn{{if eq $i 0}} active{{end}}" data-tab="{{$c.Tab}}">{{$c.Code}}</button>
{{- end}}
    </nav>

    <main>
{{- range $i, $c := .Courses}}
        <div id="{{$c.Tab}}" class="tab-content{{if eq $i 0}} active{{end}}">
            <h2>{{$c.Code}}: {{$c.Name}}</h2>
            <p class="instructor">{{$c.Instructor}}</p>
            <div class="lectures-list">
                <p class="no-lectures">No lectures yet</p>
            </div>
        </div>
{{- end}}
    </main>

    <script src="script.js"></script>
</body>
</html>
`))

// NewIndex renders an empty index page with one tab and one lecture list per course
func NewIndex(title string, list []courses.Course) (string, error) {
	var buf bytes.Buffer
	err := indexTemplate.Execute(&buf, struct {
		Title   string
		Courses []courses.Course
	}{title, list})
	if err != nil {
		return "", fmt.Errorf("failed to render index: %w", err)
	}
	return buf.String(), nil
}
