// Package email delivers rendered invoice notifications.
//
// EmailSender is implemented by the Postmark client (github.com/mrz1836/postmark)
// for real delivery and by DevSender, which writes each message to disk for
// local inspection. Both validate SendEmailParams before doing any I/O.
//
//	sender := email.NewDevSender("./tmp/emails")
//	if cfg.UsePostmark() {
//	    sender, err = email.NewPostmarkClient(cfg)
//	}
//	err = sender.SendEmail(ctx, email.SendEmailParams{
//	    SendTo:   inv.Client.Email,
//	    ReplyTo:  inv.Company.Email,
//	    Subject:  msg.Subject,
//	    BodyHTML: msg.HTML,
//	    BodyText: msg.Text,
//	    Tag:      "invoice",
//	})
//
// The templates subpackage wraps skin bodies in the shared HTML layout.
package email
