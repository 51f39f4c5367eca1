package resend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

type ResendMailer struct {
	apiKey  string
	from    string
	client  *http.Client
	baseURL string
}

func NewResendMailer(apiKey, from string) (*ResendMailer, error) {
	if apiKey == "" {
		return nil, errors.New("resend api key not set")
	}

	return &ResendMailer{
		apiKey: apiKey,
		from:   from,
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
		baseURL: "https://api.resend.com",
	}, nil
}

type sendRequest struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

func (m *ResendMailer) send(ctx context.Context, toEmail, subject, html string) error {
	body := sendRequest{
		From:    m.from,
		To:      []string{toEmail},
		Subject: subject,
		HTML:    html,
	}

	b, _ := json.Marshal(body)

	req, _ := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		m.baseURL+"/emails",
		bytes.NewBuffer(b),
	)

	req.Header.Set("Authorization", "Bearer "+m.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		buf := new(bytes.Buffer)
		buf.ReadFrom(resp.Body)
		return errors.New("failed to send email: " + buf.String())
	}

	return nil
}

func (m *ResendMailer) SendWelcomeEmail(
	ctx context.Context,
	toEmail string,
	name string,
) error {
	return m.send(ctx, toEmail, "أهلاً بك في مرسوم", `
		<p dir="rtl">أهلاً `+name+`،</p>
		<p dir="rtl">سعداء بانضمامك إلينا! تقدر الآن تصمم وتطلب قطعتك الخاصة.</p>
	`)
}

func (m *ResendMailer) SendPasswordResetEmail(
	ctx context.Context,
	toEmail string,
	code string,
) error {
	return m.send(ctx, toEmail, "رمز استعادة كلمة المرور", `
		<p dir="rtl">رمز استعادة كلمة المرور الخاص بك:</p>
		<p dir="rtl" style="font-size:24px;letter-spacing:4px"><b>`+code+`</b></p>
		<p dir="rtl">الرمز صالح لمدة ساعة واحدة ويستخدم مرة واحدة فقط.</p>
	`)
}
