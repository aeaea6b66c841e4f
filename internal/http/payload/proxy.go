package payload

import (
	"encoding/json"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
)

// Proxy renders body as an API Gateway proxy response with a JSON content type.
func Proxy(status int, body any) events.APIGatewayProxyResponse {
	b, err := json.Marshal(body)
	if err != nil {
		status = http.StatusInternalServerError
		b, _ = json.Marshal(Internal())
	}
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       string(b),
	}
}

// ProxyError renders err as an API Gateway proxy response.
func ProxyError(err error) events.APIGatewayProxyResponse {
	status, body := FromError(err)
	return Proxy(status, body)
}
