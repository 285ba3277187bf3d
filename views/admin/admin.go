package admin

import (
	"github.com/Oklavaci/3dwebmarket/internal/github"
	"github.com/Oklavaci/3dwebmarket/views/helpers"
	"github.com/a-h/templ"
)

// Status is the outcome line shown under the settings form.
type Status struct {
	Message string
	Error   bool
}

// DashboardData is what the admin dashboard shows. The stored token is never
// rendered back, only whether one exists.
type DashboardData struct {
	Settings     github.Settings
	Status       *Status
	ProductCount int
}

// Dashboard renders the GitHub settings panel and the publish forms.
func Dashboard(data DashboardData) templ.Component {
	return helpers.Component(func(h *helpers.HTML) {
		s := data.Settings
		h.Raw(`<section class="card"><h1>Admin</h1><h2>GitHub settings</h2><div id="githubSettingsRoot">`)
		h.Raw(`<form class="github-settings-grid" method="post" action="/admin/github/settings">`)
		h.Printf(`<div class="field"><label for="ghOwner">GitHub user / organization</label><input id="ghOwner" name="owner" value="%s"></div>`, s.Owner)
		h.Printf(`<div class="field"><label for="ghRepo">Repository</label><input id="ghRepo" name="repo" value="%s"></div>`, s.Repo)
		h.Printf(`<div class="field"><label for="ghBranch">Branch</label><input id="ghBranch" name="branch" value="%s"></div>`, s.Branch)

		placeholder := "Paste your token here"
		if s.HasToken() {
			placeholder = "A token is saved; leave blank to keep it"
		}
		h.Printf(`<div class="field"><label for="ghToken">Personal access token</label><input id="ghToken" name="token" type="password" autocomplete="off" placeholder="%s">`, placeholder)
		h.Raw(`<span class="small muted">The token is kept only for this browser session.</span></div>`)

		h.Raw(`<div class="actions"><button type="submit" class="btn primary small" id="saveGhSettingsBtn">Save settings</button>`)
		h.Raw(`<button type="submit" class="btn ghost small" id="testGhSettingsBtn" formaction="/admin/github/test">Test connection</button>`)
		h.Raw(`<button type="submit" class="btn ghost small" id="clearGhSettingsBtn" formaction="/admin/github/clear" formnovalidate>Forget settings</button></div></form>`)

		h.Raw(`<div class="small" id="ghStatusArea">`)
		if st := data.Status; st != nil {
			h.Printf(`<span class="status-pill %s">%s</span>`, helpers.ClassIf(st.Error, "error"), st.Message)
		}
		h.Raw(`</div></div>`)

		h.Printf(`<h2>Publish catalog</h2><p class="small muted">The site currently serves %s.</p>`,
			helpers.FormatCount(data.ProductCount, "product", "products"))
		h.Raw(`<form method="post" action="/admin/github/publish"><div class="field"><label for="productsJson">products.json</label>`)
		h.Raw(`<textarea id="productsJson" name="products" rows="12" spellcheck="false"></textarea></div>`)
		h.Raw(`<button type="submit" class="btn primary small">Publish to GitHub</button></form>`)

		h.Raw(`<h2>Upload product images</h2><form method="post" action="/admin/github/images" enctype="multipart/form-data">`)
		h.Raw(`<input type="file" name="images" accept="image/*" multiple><button type="submit" class="btn small">Upload</button></form>`)
		h.Raw(`</section>`)
	})
}
