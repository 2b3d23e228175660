package requests

type EmailPayload struct {
	Subject  string   `json:"subject"`
	From     string   `json:"from"`
	To       []string `json:"to"`
	Cc       []string `json:"cc"`
	Bcc      []string `json:"bcc"`
	Body     string   `json:"body"`
	HTMLCode string   `json:"html_code,omitempty"`
	Encoded  bool     `json:"encoded"`
}
