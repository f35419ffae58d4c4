package notification

import (
	"fmt"
	"strings"

	"avira/models"
)

// buildConfirmationEmail renders the booking confirmation HTML body.
func buildConfirmationEmail(conf models.BookingConfirmation, formattedDate, formattedTime, calendarLink string) string {
	var b strings.Builder

	b.WriteString(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <title>Booking Confirmation - Avira</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <div style="max-width: 600px; margin: 0 auto; padding: 20px;">
    <div style="background: linear-gradient(135deg, #6366f1 0%, #8b5cf6 100%); color: white; padding: 30px; text-align: center;">
      <h1>🌟 Booking Confirmed!</h1>
      <p>Your therapy session has been successfully scheduled</p>
    </div>
    <div style="background: #f8fafc; padding: 30px;">
      <p>Dear valued client,</p>
      <p>We're pleased to confirm your upcoming therapy session. Here are your booking details:</p>
`)

	fmt.Fprintf(&b, `      <table style="background: white; border-left: 4px solid #6366f1; padding: 20px; width: 100%%;">
        <tr><td><strong>Consultant:</strong></td><td>%s</td></tr>
        <tr><td><strong>Date:</strong></td><td>%s</td></tr>
        <tr><td><strong>Time:</strong></td><td>%s</td></tr>
        <tr><td><strong>Duration:</strong></td><td>%d minutes</td></tr>
        <tr><td><strong>Session Type:</strong></td><td>Video Session</td></tr>
        <tr><td><strong>Booking ID:</strong></td><td>%s</td></tr>
      </table>
`, conf.ConsultantName, formattedDate, formattedTime, conf.DurationMinutes, conf.BookingID)

	fmt.Fprintf(&b, `      <p style="text-align: center;">
        <a href="%s" style="background: #6366f1; color: white; padding: 12px 24px; text-decoration: none;">📅 Add to Google Calendar</a>
      </p>
`, calendarLink)

	b.WriteString(`      <h3>📋 What to Expect</h3>
      <ul>
        <li>You'll receive a video meeting link 15 minutes before your session</li>
        <li>Please ensure you have a stable internet connection</li>
        <li>Find a quiet, private space for your session</li>
      </ul>
      <div style="background: #fef2f2; border: 1px solid #fecaca; padding: 15px;">
        <p style="color: #dc2626;"><strong>🚨 Crisis Support</strong></p>
        <p>If you're experiencing a mental health emergency, please contact:</p>
        <p><strong>National Suicide Prevention Lifeline:</strong> 988</p>
        <p><strong>Crisis Text Line:</strong> Text HOME to 741741</p>
        <p><strong>Emergency Services:</strong> 911</p>
      </div>
      <p>If you need to reschedule or cancel your appointment, please contact us at least 24 hours in advance.</p>
      <p>Best regards,<br><strong>The Avira Team</strong></p>
    </div>
  </div>
</body>
</html>
`)

	return b.String()
}
