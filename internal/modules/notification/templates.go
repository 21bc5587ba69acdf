package notification

import "html/template"

var inquiryTmpl = template.Must(template.New("inquiry").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #1a1a2e;">New Quote Request for {{.BandName}}</h2>
  <p>You have received a new booking inquiry through Nilinki.</p>
  <table style="width: 100%; border-collapse: collapse;">
    <tr><td style="padding: 8px 0; font-weight: bold;">From</td><td>{{.ClientName}} ({{.ClientEmail}})</td></tr>
    {{if .ClientPhone}}<tr><td style="padding: 8px 0; font-weight: bold;">Phone</td><td>{{.ClientPhone}}</td></tr>{{end}}
    <tr><td style="padding: 8px 0; font-weight: bold;">Event</td><td>{{.EventType}}</td></tr>
    <tr><td style="padding: 8px 0; font-weight: bold;">Date</td><td>{{.EventDate}}</td></tr>
    <tr><td style="padding: 8px 0; font-weight: bold;">Location</td><td>{{.EventLocation}}</td></tr>
  </table>
  <h3 style="color: #1a1a2e;">Message</h3>
  <p style="white-space: pre-wrap; background: #f5f5f5; padding: 12px; border-radius: 6px;">{{.Message}}</p>
  <p>Log in to your dashboard to respond.</p>
</div>
`))

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #1a1a2e;">Your quote request was sent!</h2>
  <p>Hi {{.ClientName}},</p>
  <p>Your request to <strong>{{.BandName}}</strong> is on its way. Here is what you asked for:</p>
  <table style="width: 100%; border-collapse: collapse;">
    <tr><td style="padding: 8px 0; font-weight: bold;">Event</td><td>{{.EventType}}</td></tr>
    <tr><td style="padding: 8px 0; font-weight: bold;">Date</td><td>{{.EventDate}}</td></tr>
    <tr><td style="padding: 8px 0; font-weight: bold;">Location</td><td>{{.EventLocation}}</td></tr>
  </table>
  <p>The band will get back to you directly by email. No action is needed from you right now.</p>
  <p style="color: #888;">&mdash; The Nilinki team</p>
</div>
`))
