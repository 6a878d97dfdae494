// Package notification turns a [Document] into a transmittable message.
//
// A Document is a flat, already-decided description of one email: header
// copy, brand colour, ordered sections and attachments. [Renderer] pours it
// into a fixed layout and produces both an HTML body and a plain-text
// alternative. The renderer holds no form knowledge; everything conditional is
// resolved before a Document is built.
//
//	r, err := notification.NewRenderer()
//	msg, err := r.Render(&notification.Document{
//	    Title:      "Fund Redemption Form",
//	    Subtitle:   "New Redemption Request Received",
//	    BrandColor: "#1e40af",
//	    Subject:    "Fund Redemption Form Submission - Jane Doe",
//	    Sections: []notification.Section{
//	        {Title: "Client Information", Body: notification.Table(
//	            notification.Row{Label: "Full Name", Value: "Jane Doe"},
//	        )},
//	    },
//	})
//
// Section bodies are [Fragment]s. The helpers in this package escape their
// input; [Markdown] converts catalog copy and passes it through the sanitizer.
package notification
