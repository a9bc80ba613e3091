package kaggleclient

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
)

// DownloadCompetitionFiles baixa o arquivo zip com todos os arquivos da
// competição e o escreve em w.
func (c *KaggleClient) DownloadCompetitionFiles(ctx context.Context, competition string, creds Credentials, w io.Writer) (int64, error) {
	endpoint, err := url.Parse(c.baseURL)
	if err != nil {
		return 0, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "competitions/data/download-all", competition)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return 0, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.SetBasicAuth(creds.Username, creds.Key)
	req.Header.Set("Accept", "application/zip, application/octet-stream")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return 0, &StatusError{StatusCode: resp.StatusCode, Status: resp.Status, Body: string(body)}
	}

	n, err := io.Copy(w, resp.Body)
	if err != nil {
		return n, fmt.Errorf("erro ao gravar o arquivo baixado: %w", err)
	}

	return n, nil
}

// StatusError é retornado quando a API responde com status diferente de 200
type StatusError struct {
	StatusCode int
	Status     string
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body != "" {
		return fmt.Sprintf("requisição falhou com status: %s: %s", e.Status, e.Body)
	}
	return fmt.Sprintf("requisição falhou com status: %s", e.Status)
}
