package v1

// Client is the typed entrypoint to the Irbana backend API.
type Client struct {
	Transport  *Transport
	Pontos     *PontoEndpoint
	Documentos *DocumentoEndpoint
}

// NewClient creates a client for the given backend base URL using a
// Bearer token for authentication.
func NewClient(baseURL, token string) *Client {
	transport := NewTransport(baseURL, token)
	return &Client{
		Transport:  transport,
		Pontos:     &PontoEndpoint{transport: transport},
		Documentos: &DocumentoEndpoint{transport: transport},
	}
}
