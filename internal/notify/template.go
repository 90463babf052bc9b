package notify

import "fmt"

// ConfirmationEmail builds the subject, plain-text and HTML bodies for the
// registration confirmation sent to an attendee.
func ConfirmationEmail(firstName, lastName, formattedID string) (subject, text, html string) {
	subject = "Registration Confirmed - Govtec Competition"

	text = fmt.Sprintf(`Hello %s %s,

Congratulations! Your registration for the Govtec Competition has been successfully confirmed.

Registration Details:
- Registration ID: %s
- Name: %s %s
- Event: Govtec Competition

Please save this email as confirmation. Your Registration ID may be required at the event.

We're excited to see you at the competition!

Best regards,
The Govtec Events Team`, firstName, lastName, formattedID, firstName, lastName)

	html = fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Registration Confirmed</title></head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; margin: 0; padding: 20px; background-color: #f5f5f5;">
  <div style="max-width: 600px; margin: 0 auto; background-color: white; border-radius: 10px; overflow: hidden;">
    <div style="background: linear-gradient(135deg, #f97316 0%%, #4169e1 100%%); color: white; padding: 30px; text-align: center;">
      <h1 style="margin: 0; font-size: 28px;">Registration Confirmed!</h1>
      <p style="margin: 10px 0 0 0; font-size: 16px;">Govtec Competition</p>
    </div>
    <div style="padding: 40px 30px;">
      <h2 style="color: #4169e1; margin-top: 0;">Hello %s!</h2>
      <p>Congratulations! Your registration for the <strong>Govtec Competition</strong> has been successfully confirmed.</p>
      <div style="background-color: #f8f9fa; border-left: 4px solid #f97316; padding: 20px; margin: 25px 0; border-radius: 5px;">
        <h3 style="margin: 0 0 15px 0; color: #4169e1;">Registration Details</h3>
        <p style="margin: 8px 0;"><strong>Registration ID:</strong> <span style="font-family: monospace;">%s</span></p>
        <p style="margin: 8px 0;"><strong>Name:</strong> %s %s</p>
        <p style="margin: 8px 0;"><strong>Event:</strong> Govtec Competition</p>
      </div>
      <p>Please save this email as confirmation. Your Registration ID may be required at the event.</p>
      <p>We're excited to see you at the competition!</p>
    </div>
    <div style="background-color: #f8f9fa; padding: 25px 30px; text-align: center; border-top: 1px solid #e9ecef;">
      <p style="margin: 0; color: #4169e1; font-weight: bold;">Best regards,<br>The Govtec Events Team</p>
      <p style="margin: 15px 0 0 0; font-size: 12px; color: #6c757d;">This is an automated confirmation email. Please do not reply.</p>
    </div>
  </div>
</body>
</html>`, firstName, formattedID, firstName, lastName)

	return subject, text, html
}
