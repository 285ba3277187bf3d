package bring

import (
	"github.com/Oklavaci/3dwebmarket/internal/whatsapp"
	"github.com/Oklavaci/3dwebmarket/views/helpers"
	"github.com/a-h/templ"
)

// FormData is what the bring-your-model page shows.
type FormData struct {
	Request whatsapp.BringRequest
	Error   string
	Link    string
}

// Form renders the bring-your-model form. When a link has been generated it
// is shown so the visitor can open the chat themselves.
func Form(data FormData) templ.Component {
	return helpers.Component(func(h *helpers.HTML) {
		h.Raw(`<section class="card"><h1>Bring your own model</h1>`)
		h.Raw(`<p class="muted">Send us your details and we will arrange the print of your model file.</p>`)

		if data.Error != "" {
			h.Printf(`<div class="status-pill error" role="alert">%s</div>`, data.Error)
		}

		h.Raw(`<form id="bringForm" method="post" action="/bring">`)
		h.Printf(`<div class="field"><label for="bFullName">Full name</label><input id="bFullName" name="fullName" value="%s" required></div>`, data.Request.FullName)
		h.Printf(`<div class="field"><label for="bPhone">Phone (WhatsApp)</label><input id="bPhone" name="phone" type="tel" value="%s" required></div>`, data.Request.Phone)
		h.Printf(`<div class="field"><label for="bNotes">Notes</label><textarea id="bNotes" name="notes" rows="4">%s</textarea></div>`, data.Request.Notes)
		h.Raw(`<button type="submit" class="btn primary small">Send on WhatsApp</button></form>`)

		if data.Link != "" {
			h.Printf(`<p class="small"><a id="bWhatsAppLink" href="%s" target="_blank" rel="noopener noreferrer">Open the WhatsApp message</a></p>`, helpers.SafeURL(data.Link))
		}
		h.Raw(`</section>`)
	})
}
