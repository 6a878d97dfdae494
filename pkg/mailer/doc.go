// Package mailer hands fully composed messages to an email provider.
//
// Providers implement [Sender]; the Resend adapter lives in the resend
// subpackage and [LogSender] stands in when mail should only be logged.
// Application code talks to a [Gateway], which makes exactly one provider call
// per message and reports the result as an [Outcome] instead of an error:
//
//	gw := mailer.NewGateway(resend.New(cfg.Resend), mailer.WithLogger(log))
//	out := gw.Dispatch(ctx, &mailer.Email{
//	    To:      []string{"ops@example.com"},
//	    Subject: "Fund Redemption Form Submission",
//	    HTML:    body,
//	})
//	if !out.Delivered {
//	    // out.FailureReason is for logs only
//	}
//
// The gateway never retries and never panics past its boundary.
package mailer
