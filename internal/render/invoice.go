package render

// partyView is a sender or recipient block on an invoice or letter.
type partyView struct {
	Name    string
	Address string
	Email   string
	Phone   string
	LogoURL string
}

type lineItemView struct {
	Description string
	Quantity    float64
	UnitPrice   float64
}

type invoiceView struct {
	From     partyView
	To       partyView
	Number   string
	Date     string
	DueDate  string
	Items    []lineItemView
	Notes    string
	Currency string
	TaxRate  string
	HasTax   bool
	Totals   Totals
}

func buildInvoiceView(data Map, totals Totals) invoiceView {
	v := invoiceView{
		From: partyView{
			Name:    data.Str("from.name"),
			Address: data.Str("from.address"),
			Email:   data.Str("from.email"),
			Phone:   data.Str("from.phone"),
			LogoURL: data.Str("from.logo_url"),
		},
		To: partyView{
			Name:    data.Str("to.name"),
			Address: data.Str("to.address"),
			Email:   data.Str("to.email"),
		},
		Number:   data.Str("invoice_number"),
		Date:     data.Str("date"),
		DueDate:  data.Str("due_date"),
		Notes:    data.Str("notes"),
		Currency: data.Str("currency"),
		TaxRate:  data.Str("tax_rate"),
		HasTax:   data.Truthy("tax_rate"),
		Totals:   totals,
	}
	for _, item := range data.Objects("items") {
		v.Items = append(v.Items, lineItemView{
			Description: item.Str("description"),
			Quantity:    item.Float("quantity"),
			UnitPrice:   item.Float("unit_price"),
		})
	}
	return v
}

var invoiceTmpl = mustTemplate("invoice", `<div class="header-bar"></div>
<div class="flex justify-between items-start mb-8">
  <div>
    {{if .From.LogoURL}}<img src="{{.From.LogoURL}}" class="logo-img mb-4" alt="Logo"><br>{{end}}
    <span class="font-bold" style="font-size:18px">{{.From.Name}}</span>
    {{if .From.Address}}<div class="text-muted text-small mt-2" style="white-space:pre-line">{{.From.Address}}</div>{{end}}
    {{if .From.Email}}<div class="text-muted text-small">{{.From.Email}}</div>{{end}}
    {{if .From.Phone}}<div class="text-muted text-small">{{.From.Phone}}</div>{{end}}
  </div>
  <div style="text-align:right">
    <h1 style="color:var(--primary)">INVOICE</h1>
    <div class="text-muted text-small mt-2">
      {{if .Number}}<div><strong>Invoice #:</strong> {{.Number}}</div>{{end}}
      {{if .Date}}<div><strong>Date:</strong> {{.Date}}</div>{{end}}
      {{if .DueDate}}<div><strong>Due:</strong> {{.DueDate}}</div>{{end}}
    </div>
  </div>
</div>

<div class="mb-8" style="background:var(--surface); padding:16px 20px; border-radius:8px">
  <div class="text-muted text-small font-semibold" style="text-transform:uppercase; letter-spacing:0.05em; margin-bottom:4px">Bill To</div>
  <div class="font-semibold">{{.To.Name}}</div>
  {{if .To.Address}}<div class="text-muted text-small" style="white-space:pre-line">{{.To.Address}}</div>{{end}}
  {{if .To.Email}}<div class="text-muted text-small">{{.To.Email}}</div>{{end}}
</div>

<table class="data-table">
  <thead>
    <tr>
      <th style="width:50%">Description</th>
      <th class="text-center">Qty</th>
      <th class="text-right">Unit Price</th>
      <th class="text-right">Amount</th>
    </tr>
  </thead>
  <tbody>
    {{range .Items}}
    <tr>
      <td>{{.Description}}</td>
      <td class="text-center">{{.Quantity}}</td>
      <td class="text-right">{{currency .UnitPrice $.Currency}}</td>
      <td class="text-right">{{currency (multiply .Quantity .UnitPrice) $.Currency}}</td>
    </tr>
    {{end}}
  </tbody>
</table>

<div class="flex justify-between mt-8">
  <div style="flex:1">
    {{if .Notes}}<div class="text-muted text-small"><strong>Notes:</strong><br>{{.Notes}}</div>{{end}}
  </div>
  <div style="min-width:240px">
    <div class="flex justify-between mb-2">
      <span class="text-muted">Subtotal</span>
      <span class="font-semibold">{{currency .Totals.Subtotal .Currency}}</span>
    </div>
    {{if .HasTax}}
    <div class="flex justify-between mb-2">
      <span class="text-muted">Tax ({{.TaxRate}}%)</span>
      <span class="font-semibold">{{currency .Totals.Tax .Currency}}</span>
    </div>
    {{end}}
    <hr class="divider">
    <div class="flex justify-between">
      <span class="font-bold" style="font-size:16px">Total</span>
      <span class="font-bold" style="font-size:18px; color:var(--primary)">{{currency .Totals.Total .Currency}}</span>
    </div>
  </div>
</div>
`)
