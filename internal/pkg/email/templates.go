package email

const (
	TemplateContactOwner        = "contact_owner"
	TemplateContactConfirmation = "contact_confirmation"
)

// BaseTemplate wraps every message body
const BaseTemplate = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="margin: 0; padding: 0; background-color: #FFFFFF;">
<div style="font-family: 'Segoe UI', Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
{{.Content}}
</div>
</body>
</html>`

// ContactOwnerTemplate notifies the site owner about a contact form submission.
// Data: Name, Email, Subject, Message
const ContactOwnerTemplate = `<div style="background: linear-gradient(135deg, #F2A2C0, #4CB3FF); padding: 30px; border-radius: 12px 12px 0 0;">
    <h1 style="color: #1E2333; margin: 0; font-size: 24px;">New Contact Form Submission</h1>
</div>
<div style="background-color: #F6F7FB; padding: 30px; border-radius: 0 0 12px 12px; border: 1px solid #e0e0e0; border-top: none;">
    <p style="color: #66708A; margin: 0 0 5px 0; font-size: 12px; text-transform: uppercase;">From</p>
    <p style="color: #1E2333; margin: 0 0 20px 0; font-size: 16px; font-weight: 500;">{{.Name}}</p>
    <p style="color: #66708A; margin: 0 0 5px 0; font-size: 12px; text-transform: uppercase;">Email</p>
    <p style="color: #1E2333; margin: 0 0 20px 0; font-size: 16px;"><a href="mailto:{{.Email}}" style="color: #4CB3FF;">{{.Email}}</a></p>
    <p style="color: #66708A; margin: 0 0 5px 0; font-size: 12px; text-transform: uppercase;">Subject</p>
    <p style="color: #1E2333; margin: 0 0 20px 0; font-size: 16px; font-weight: 500;">{{.Subject}}</p>
    <p style="color: #66708A; margin: 0 0 5px 0; font-size: 12px; text-transform: uppercase;">Message</p>
    <div style="background-color: #FFFFFF; padding: 20px; border-radius: 8px; border: 1px solid #e0e0e0;">
        <p style="color: #3B4256; margin: 0; font-size: 15px; line-height: 1.6; white-space: pre-wrap;">{{.Message}}</p>
    </div>
</div>`

// ContactConfirmationTemplate thanks the visitor for their message.
// Data: Name, Message, Signature
const ContactConfirmationTemplate = `<div style="background: linear-gradient(135deg, #F2A2C0, #4CB3FF); padding: 30px; border-radius: 12px 12px 0 0;">
    <h1 style="color: #1E2333; margin: 0; font-size: 24px;">Message Received!</h1>
</div>
<div style="background-color: #F6F7FB; padding: 30px; border-radius: 0 0 12px 12px; border: 1px solid #e0e0e0; border-top: none;">
    <p style="color: #3B4256; font-size: 16px; line-height: 1.6; margin: 0 0 20px 0;">Hi {{.Name}},</p>
    <p style="color: #3B4256; font-size: 16px; line-height: 1.6; margin: 0 0 20px 0;">
        Thank you for getting in touch! I've received your message and will get back to you as soon as possible.
    </p>
    <div style="background-color: #FFFFFF; padding: 20px; border-radius: 8px; border: 1px solid #e0e0e0; margin-bottom: 20px;">
        <p style="color: #66708A; margin: 0 0 10px 0; font-size: 12px; text-transform: uppercase;">Your message:</p>
        <p style="color: #3B4256; margin: 0; font-size: 14px; line-height: 1.5; white-space: pre-wrap;">{{.Message}}</p>
    </div>
    <p style="color: #3B4256; font-size: 16px; line-height: 1.6; margin: 0;">
        Best regards,<br>
        <strong>{{.Signature}}</strong>
    </p>
</div>`
