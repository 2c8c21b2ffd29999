package client

import (
	"io"
	"text/template"

	"github.com/example/walletbridge/internal/types"
)

var viewTmpl = template.Must(template.New("view").Funcs(template.FuncMap{
	"sol": types.FormatSol,
}).Parse(`{{if .Connected -}}
Connected Wallet: {{.PublicKey}}
{{if .Balance.IsFailed -}}
Error fetching balance: {{.Balance.Err}}
{{else if .Balance.IsLoaded -}}
Balance: {{sol .Balance.Value}} SOL
{{else -}}
Balance: Loading...
{{end -}}
{{if .Transactions.IsFailed -}}
Error fetching transactions: {{.Transactions.Err}}
{{else -}}
Recent Transactions
{{range .Transactions.Value -}}
- {{.Signature}}
{{end -}}
{{end -}}
{{end -}}`))

// Render writes the view as text. Nothing is written while disconnected.
func (v View) Render(w io.Writer) error {
	return viewTmpl.Execute(w, v)
}
