package mail

import (
	"fmt"
	"html"
	"time"
)

// scoreColor picks the accent color for the score card: green from 80,
// amber from 60, red below.
func scoreColor(score int) string {
	switch {
	case score >= 80:
		return "#22c55e"
	case score >= 60:
		return "#f59e0b"
	default:
		return "#ef4444"
	}
}

// reportHTML renders the notification email body. User-supplied strings are
// HTML-escaped before interpolation.
func reportHTML(e ReportEmail) string {
	greeting := "Hello"
	if e.FullName != "" {
		greeting = "Dear " + html.EscapeString(e.FullName)
	}
	role := html.EscapeString(e.SelectedRole)
	verdict := html.EscapeString(e.Verdict)
	url := html.EscapeString(e.ReportURL)

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: 'Georgia', serif; background-color: #faf9f7; margin: 0; padding: 20px;">
  <div style="max-width: 600px; margin: 0 auto; background-color: #ffffff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 6px rgba(0,0,0,0.1);">

    <!-- Header -->
    <div style="background: linear-gradient(135deg, #7c3aed, #c2410c); padding: 30px; text-align: center;">
      <h1 style="color: #ffffff; margin: 0; font-size: 28px;">🖐️ PalmVeda</h1>
      <p style="color: rgba(255,255,255,0.9); margin: 10px 0 0;">Vedic Palm Analysis Report</p>
    </div>

    <!-- Content -->
    <div style="padding: 30px;">
      <p style="color: #374151; font-size: 16px; line-height: 1.6;">
        %s,
      </p>

      <p style="color: #374151; font-size: 16px; line-height: 1.6;">
        Your palm analysis for the role of <strong>%s</strong> has been completed!
      </p>

      <!-- Score Card -->
      <div style="background-color: #f9fafb; border-radius: 8px; padding: 20px; margin: 20px 0; text-align: center;">
        <p style="color: #6b7280; margin: 0 0 10px; font-size: 14px;">Compatibility Score</p>
        <div style="font-size: 48px; font-weight: bold; color: %s;">
          %d%%
        </div>
      </div>

      <!-- Verdict -->
      <div style="background-color: #fef3c7; border-left: 4px solid #f59e0b; padding: 15px; margin: 20px 0;">
        <p style="color: #92400e; margin: 0; font-size: 14px; font-weight: bold;">Verdict</p>
        <p style="color: #78350f; margin: 8px 0 0; font-size: 15px;">%s</p>
      </div>

      <!-- CTA Button -->
      <div style="text-align: center; margin: 30px 0;">
        <a href="%s" style="display: inline-block; background: linear-gradient(135deg, #7c3aed, #c2410c); color: #ffffff; text-decoration: none; padding: 14px 28px; border-radius: 8px; font-weight: bold; font-size: 16px;">
          View Full Report
        </a>
      </div>

      <p style="color: #6b7280; font-size: 14px; line-height: 1.6;">
        Your detailed report includes:
      </p>
      <ul style="color: #6b7280; font-size: 14px; line-height: 1.8;">
        <li>Complete palm line analysis</li>
        <li>Personality traits assessment</li>
        <li>Strengths and areas for improvement</li>
        <li>Career growth predictions</li>
        <li>Alternative role recommendations</li>
      </ul>

      <p style="color: #9ca3af; font-size: 12px; margin-top: 30px; text-align: center;">
        Share your report: <a href="%s" style="color: #7c3aed;">%s</a>
      </p>
    </div>

    <!-- Footer -->
    <div style="background-color: #f3f4f6; padding: 20px; text-align: center;">
      <p style="color: #9ca3af; font-size: 12px; margin: 0;">
        © %d PalmVeda. Powered by Samudrika Shastra.
      </p>
    </div>
  </div>
</body>
</html>`,
		greeting, role, scoreColor(e.CompatibilityScore), e.CompatibilityScore, verdict, url, url, url, time.Now().Year())
}
