package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/zazianopizza/zaziano/internal/domain"
)

var tmplFuncs = template.FuncMap{
	"euro": func(v float64) string {
		return fmt.Sprintf("%.2f €", v)
	},
	"extraTotal": func(price float64, quantity int64) float64 {
		return price * float64(quantity)
	},
}

var confirmationTmpl = template.Must(template.New("confirmation").Funcs(tmplFuncs).Parse(`
<div style="direction: ltr; text-align: left; padding: 20px; background: #f9f9f9;">
  <h2 style="color: #096332;">Vielen Dank für Ihre Bestellung!</h2>
  <p>Lieber {{.Order.Customer.FirstName}} {{.Order.Customer.LastName}},</p>
  <p>vielen Dank für Ihre Bestellung bei uns. Hier sind die Details:</p>

  <div style="margin: 20px 0; padding: 15px; background: #ffffff; border: 1px solid #ddd; border-radius: 8px;">
    <h3>📦 Bestellinformationen</h3>
    <p><strong>Bestellnummer:</strong> {{.OrderID}}</p>
    <p><strong>Datum:</strong> {{.Date}}</p>
    <p><strong>Lieferart:</strong> {{.DeliveryLabel}}</p>
    {{if .Order.Delivery.PreorderTime}}<p><strong>Bestellzeit:</strong> {{.Order.Delivery.PreorderTime}}</p>{{end}}
    <p><strong>Zahlungsart:</strong> {{.PaymentLabel}}</p>
  </div>

  <h3>📋 Bestellte Artikel</h3>
  <ul style="list-style: none; padding: 0;">
    {{range .Order.Items}}
    <li style="margin-bottom: 10px;">
      <strong>{{.Quantity}} × {{.Name}}</strong>
      {{if .SizeLabel}}({{.SizeLabel}}){{end}}
      <br/>
      Preis: {{euro .TotalPrice}}
      {{if .Extras}}
      <div style="margin-top: 5px; font-size: 0.9em; color: #555;">
        <strong>Zusatz:</strong>
        {{range .Extras}}{{.Quantity}} × {{.Name}} ({{euro (extraTotal .Price .Quantity)}}) {{end}}
      </div>
      {{end}}
    </li>
    {{end}}
  </ul>

  <div style="margin-top: 20px; font-size: 1.1em;">
    <p><strong>Zwischensumme:</strong> {{euro .Order.Subtotal}}</p>
    <p><strong>Lieferkosten:</strong> {{euro .Order.DeliveryFee}}</p>
    <p><strong>Gesamtsumme:</strong> {{euro .Order.TotalPrice}}</p>
  </div>

  <hr style="margin: 20px 0; border: 1px solid #eee;" />
  <p style="color: #777;">Wir freuen uns auf Ihre Bestellung. Bei Fragen erreichen Sie uns jederzeit.</p>
  <p><strong>Zaziano Restaurant</strong><br/><strong>Telefon:</strong> <a href="tel:+4917660366606">+4917660366606</a> <strong>Mail:</strong> <a href="mailto:info@zaziano.de">info@zaziano.de</a></p>
</div>
`))

var cancellationTmpl = template.Must(template.New("cancellation").Funcs(tmplFuncs).Parse(`
<div style="direction: ltr; text-align: left; padding: 20px; background: #f9f9f9;">
  <h2 style="color: #b00020;">Ihre Bestellung wurde storniert</h2>
  <p>Lieber {{.Order.Customer.FirstName}} {{.Order.Customer.LastName}},</p>
  <p>Ihre Bestellung <strong>#{{.OrderID}}</strong> vom {{.Date}} wurde storniert.</p>

  {{if .Refunded}}
  <p>Der gezahlte Betrag von <strong>{{euro .Order.TotalPrice}}</strong> wird Ihnen vollständig zurückerstattet. Je nach Zahlungsanbieter kann die Gutschrift einige Werktage dauern.</p>
  {{else}}
  <p>Es wurde keine Zahlung eingezogen, daher ist keine Rückerstattung erforderlich.</p>
  {{end}}

  <h3>📋 Stornierte Artikel</h3>
  <ul style="list-style: none; padding: 0;">
    {{range .Order.Items}}
    <li style="margin-bottom: 10px;">
      <strong>{{.Quantity}} × {{.Name}}</strong>
      {{if .SizeLabel}}({{.SizeLabel}}){{end}}
      — {{euro .TotalPrice}}
    </li>
    {{end}}
  </ul>

  <hr style="margin: 20px 0; border: 1px solid #eee;" />
  <p style="color: #777;">Bei Fragen erreichen Sie uns jederzeit.</p>
  <p><strong>Zaziano Restaurant</strong><br/><strong>Telefon:</strong> <a href="tel:+4917660366606">+4917660366606</a> <strong>Mail:</strong> <a href="mailto:info@zaziano.de">info@zaziano.de</a></p>
</div>
`))

type templateData struct {
	OrderID       int64
	Date          string
	Order         *domain.Order
	DeliveryLabel string
	PaymentLabel  string
	Refunded      bool
}

func newTemplateData(order *domain.Order, orderID int64, refunded bool) templateData {
	deliveryLabel := "Abholung"
	if order.Delivery.Type == "delivery" {
		deliveryLabel = "Lieferung"
	}

	paymentLabel := "Karte"
	if order.Payment.Method == "cash" {
		paymentLabel = "Bar bei Lieferung"
	}

	return templateData{
		OrderID:       orderID,
		Date:          time.Now().Format("02.01.2006"),
		Order:         order,
		DeliveryLabel: deliveryLabel,
		PaymentLabel:  paymentLabel,
		Refunded:      refunded,
	}
}

func renderConfirmation(order *domain.Order, orderID int64) (string, error) {
	var buf bytes.Buffer
	if err := confirmationTmpl.Execute(&buf, newTemplateData(order, orderID, false)); err != nil {
		return "", fmt.Errorf("failed to render confirmation email: %w", err)
	}

	return buf.String(), nil
}

func renderCancellation(order *domain.Order, orderID int64, refunded bool) (string, error) {
	var buf bytes.Buffer
	if err := cancellationTmpl.Execute(&buf, newTemplateData(order, orderID, refunded)); err != nil {
		return "", fmt.Errorf("failed to render cancellation email: %w", err)
	}

	return buf.String(), nil
}
