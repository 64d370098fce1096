package notify

import (
	"html/template"
	"strings"

	"github.com/bertramb10/jobscout/internal/engine"
)

var htmlBodyTmpl = template.Must(template.New("notification").Funcs(template.FuncMap{
	// Teaser: up to 200 runes, cut at a word boundary. Short descriptions
	// pass through without an ellipsis.
	"summary": func(s string) string {
		return engine.TruncateAtWord(s, 200)
	},
}).Parse(`<!DOCTYPE html>
<html>
  <head>
    <style>
      body { font-family: -apple-system, 'Segoe UI', Roboto, Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px; }
      h1 { color: #2563eb; border-bottom: 3px solid #2563eb; padding-bottom: 10px; }
      .job-card { background: #f8fafc; border-left: 4px solid #2563eb; padding: 15px; margin: 15px 0; border-radius: 4px; }
      .job-title { font-size: 18px; font-weight: bold; color: #1e293b; margin: 0 0 5px 0; }
      .job-company { color: #64748b; margin: 0 0 10px 0; }
      .match-score { display: inline-block; background: #10b981; color: white; padding: 4px 12px; border-radius: 12px; font-size: 14px; font-weight: bold; }
      .job-link { display: inline-block; margin-top: 10px; padding: 8px 16px; background: #2563eb; color: white; text-decoration: none; border-radius: 4px; }
      .footer { margin-top: 30px; padding-top: 20px; border-top: 1px solid #e2e8f0; font-size: 14px; color: #64748b; }
    </style>
  </head>
  <body>
    <h1>🎯 {{len .Jobs}} New High-Match Job{{if gt (len .Jobs) 1}}s{{end}} Found!</h1>

    <p>Din automatiske job søgning har fundet nye stillinger med høj kompatibilitet:</p>

    {{range .Jobs}}
    <div class="job-card">
      <h2 class="job-title">{{.Title}}</h2>
      <p class="job-company">📍 {{.Company}} • {{.Location}}</p>
      <span class="match-score">{{.MatchScore}}% Match</span>
      <p>{{summary .Description}}</p>
      <a href="{{.URL}}" class="job-link" target="_blank">Se Jobopslag →</a>
    </div>
    {{end}}

    <div class="footer">
      <p>
        Denne email blev sendt automatisk af dit Job Application System.<br>
        Du modtager kun emails for jobs med &gt;{{.Threshold}}% match.
      </p>
    </div>
  </body>
</html>
`))

type notificationData struct {
	Jobs      []engine.JobRecord
	Threshold int
}

func renderHTMLBody(jobRecords []engine.JobRecord, threshold int) (string, error) {
	var b strings.Builder
	if err := htmlBodyTmpl.Execute(&b, notificationData{Jobs: jobRecords, Threshold: threshold}); err != nil {
		return "", err
	}
	return b.String(), nil
}
