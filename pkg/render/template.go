package render

// DefaultTemplate is written by `lecturectl init` as lecture-template.html
const DefaultTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{COURSE_CODE}} - {{LECTURE_DATE}}</title>
    <link rel="stylesheet" href="../../styles.css">
</head>
<body>
    <header>
        <a class="back-link" href="../../index.html#{{COURSE_TAB}}">&larr; Back to {{COURSE_CODE}}</a>
        <h1>{{COURSE_CODE}}: {{COURSE_NAME}}</h1>
        <p class="lecture-meta">
            <span class="lecture-date">{{LECTURE_DATE}}</span>
            <span class="lecture-instructor">{{INSTRUCTOR}}</span>
        </p>
    </header>

    <main>
        <section class="topics">
            <h2>Topics</h2>
            <ul>
                {{TOPICS}}
            </ul>
        </section>

        <section class="raw-notes">
            <h2>Raw Notes</h2>
            {{RAW_NOTES}}
        </section>

        <section class="expanded-notes">
            <h2>Expanded Notes</h2>
            {{EXPANDED_NOTES}}
        </section>

        <section class="assignments">
            <h2>Assignments</h2>
            <ul>
                {{ASSIGNMENTS}}
            </ul>
        </section>
    </main>
</body>
</html>
`
