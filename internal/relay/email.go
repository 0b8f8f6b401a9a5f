package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"net/http"
	"time"
)

const resendEndpoint = "https://api.resend.com/emails"

// Every retainer email is blind-copied to the intake desk for the case file.
const retainerBCC = "support@rivercrestlaw.info"

// RetainerEmail carries everything the retainer agreement template needs.
type RetainerEmail struct {
	To             string
	From           string
	BrandName      string
	FirstName      string
	LastName       string
	CourtName      string
	CitationNumber string
	ViolationType  string
	Amount         float64
	PaymentID      string
	Date           time.Time
}

// ResendClient sends transactional email through the Resend API.
type ResendClient struct {
	apiKey   string
	endpoint string
	http     *http.Client
}

// NewResendClient creates a Resend API client.
func NewResendClient(apiKey string, httpClient *http.Client) *ResendClient {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &ResendClient{apiKey: apiKey, endpoint: resendEndpoint, http: httpClient}
}

// SendRetainer renders and sends the retainer agreement. The payment has
// already settled when this runs, so callers treat failures as best-effort.
func (c *ResendClient) SendRetainer(ctx context.Context, email RetainerEmail) error {
	var html bytes.Buffer
	if err := retainerTmpl.Execute(&html, retainerData(email)); err != nil {
		return fmt.Errorf("render retainer email: %w", err)
	}

	court := email.CourtName
	if court == "" {
		court = "Traffic Infraction"
	}

	body, err := json.Marshal(map[string]any{
		"from":    email.From,
		"to":      email.To,
		"bcc":     retainerBCC,
		"subject": fmt.Sprintf("Retainer Agreement - %s Defense", court),
		"html":    html.String(),
	})
	if err != nil {
		return fmt.Errorf("encode email payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("send retainer email: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("resend returned %d: %s", resp.StatusCode, msg)
	}
	return nil
}

type retainerView struct {
	BrandName      string
	ClientName     string
	Date           string
	CourtName      string
	CitationNumber string
	ViolationType  string
	Amount         string
	PaymentID      string
}

func retainerData(e RetainerEmail) retainerView {
	court := e.CourtName
	if court == "" {
		court = "To Be Determined"
	}
	return retainerView{
		BrandName:      e.BrandName,
		ClientName:     e.FirstName + " " + e.LastName,
		Date:           e.Date.Format("January 2, 2006"),
		CourtName:      court,
		CitationNumber: e.CitationNumber,
		ViolationType:  e.ViolationType,
		Amount:         fmt.Sprintf("%.2f", e.Amount),
		PaymentID:      e.PaymentID,
	}
}

// The email doubles as receipt and retainer agreement, so the body must name
// the case, the fee paid, and the scope of representation.
var retainerTmpl = template.Must(template.New("retainer").Parse(`<!DOCTYPE html>
<html>
<head>
  <style>
    body { font-family: Georgia, serif; line-height: 1.6; color: #333; max-width: 700px; margin: 0 auto; padding: 20px; }
    .header { text-align: center; border-bottom: 2px solid #1e3a5f; padding-bottom: 20px; margin-bottom: 30px; }
    .section-title { color: #1e3a5f; font-weight: bold; border-bottom: 1px solid #ddd; padding-bottom: 5px; margin-bottom: 10px; }
    .case-info { background: #f5f5f5; padding: 15px; border-radius: 5px; }
    .highlight { background: #e8f4e8; padding: 15px; border-left: 4px solid #2d6a2d; margin: 20px 0; }
    .footer { margin-top: 40px; padding-top: 20px; border-top: 2px solid #1e3a5f; font-size: 12px; color: #666; text-align: center; }
  </style>
</head>
<body>
  <div class="header"><h1>{{.BrandName}}</h1></div>

  <p><strong>Date:</strong> {{.Date}}</p>
  <p><strong>To:</strong> {{.ClientName}}</p>
  <p><strong>Re:</strong> Legal Representation Agreement</p>

  <div class="section-title">CASE INFORMATION</div>
  <div class="case-info">
    <p><strong>Client:</strong> {{.ClientName}}</p>
    <p><strong>Court:</strong> {{.CourtName}}</p>
    {{if .CitationNumber}}<p><strong>Citation #:</strong> {{.CitationNumber}}</p>{{end}}
    {{if .ViolationType}}<p><strong>Charge:</strong> {{.ViolationType}}</p>{{end}}
    <p><strong>Fee Paid:</strong> ${{.Amount}}</p>
    <p><strong>Confirmation #:</strong> {{.PaymentID}}</p>
  </div>

  <div class="highlight">
    <strong>Thank you for retaining {{.BrandName}}.</strong> Your payment has been
    received and we are now your attorney of record for this matter. We will handle
    all court appearances and communications with the prosecutor on your behalf.
  </div>

  <div class="section-title">SCOPE OF REPRESENTATION</div>
  <ol>
    <li><strong>Services Included:</strong> Representation in the above-referenced traffic infraction matter, including case review, discovery requests, negotiations with the prosecutor, and all court appearances through final disposition.</li>
    <li><strong>Flat Fee:</strong> The fee paid covers all attorney services for this matter. No additional fees will be charged unless the case involves circumstances not disclosed at intake or requires appeal.</li>
    <li><strong>Court Costs:</strong> Client remains responsible for any court-imposed fines, fees, or penalties if the case does not result in dismissal.</li>
    <li><strong>No Guarantee:</strong> Competent representation is provided but no particular outcome can be guaranteed.</li>
  </ol>

  <div class="section-title">NEXT STEPS</div>
  <ol>
    <li>A Notice of Appearance will be filed with the court within 2-3 business days</li>
    <li>Discovery (evidence) will be requested from the prosecutor</li>
    <li>You will receive an email when your hearing date is confirmed</li>
    <li>You do NOT need to appear in court</li>
  </ol>

  <p>By making payment, you acknowledge receipt of this agreement and consent to representation under these terms.</p>

  <div class="footer">
    <p>{{.BrandName}}</p>
    <p>This email serves as your receipt and retainer agreement. Please save it for your records.</p>
  </div>
</body>
</html>
`))
