package app

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"runtime/trace"
	"slices"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
)

type LambdaFunction func(ctx context.Context, request events.APIGatewayProxyRequest) (*events.APIGatewayProxyResponse, error)

func AuthMiddleware(function LambdaFunction) LambdaFunction {
	return func(ctx context.Context, request events.APIGatewayProxyRequest) (*events.APIGatewayProxyResponse, error) {
		expectedToken := os.Getenv("AUTH_KEY")
		if expectedToken == "" {
			return &events.APIGatewayProxyResponse{
				StatusCode: 401,
				Body:       "Unauthorized",
			}, nil
		}
		expectedToken = fmt.Sprintf("Bearer %s", expectedToken)
		token, tokenFound := request.Headers["authorization"]
		if !tokenFound || token != expectedToken {
			return &events.APIGatewayProxyResponse{
				StatusCode: 401,
				Body:       "Unauthorized",
			}, nil
		}

		return function(ctx, request)
	}
}

func CheckEnvMiddleware(function LambdaFunction) LambdaFunction {
	return func(ctx context.Context, request events.APIGatewayProxyRequest) (*events.APIGatewayProxyResponse, error) {
		currentEnv := os.Getenv("ENV")
		disabledEnvs := os.Getenv("ENV_DISABLE")
		if currentEnv == "" || (disabledEnvs != "" && slices.Contains(strings.Split(disabledEnvs, ","), currentEnv)) {
			return &events.APIGatewayProxyResponse{
				StatusCode: 404,
				Body:       "Not Found",
			}, nil
		}

		return function(ctx, request)
	}
}

func ProfilingMiddleware(function LambdaFunction, filename string) LambdaFunction {
	return func(ctx context.Context, request events.APIGatewayProxyRequest) (*events.APIGatewayProxyResponse, error) {
		if os.Getenv("PROFILING") == "1" && os.Getenv("ENV") == "LOCAL" {
			path := os.Getenv("PROFILING_PATH")
			if path != "" {
				if string(path[len(path)-1]) != "/" {
					path += "/"
				}
				filename = path + filename
			}
			filename += ".out"
			f, err := os.Create(filename)
			if err != nil {
				log.Printf("!!! Could not create trace profile for %v: %v", filename, err)
			} else {
				defer f.Close()
				if err := trace.Start(f); err != nil {
					f.Close()
					log.Printf("!!! Could not start trace profile for %v: %v", filename, err)
				} else {
					defer trace.Stop()
					fmt.Printf("!!! Tracing on for: %v\n", filename)
				}
			}
		}

		return function(ctx, request)
	}
}

// TimeoutMiddleware bounds the handler under the API Gateway 29s cutoff,
// leaving headroom to answer 504 ourselves.
func TimeoutMiddleware(function LambdaFunction) LambdaFunction {
	return func(ctx context.Context, request events.APIGatewayProxyRequest) (*events.APIGatewayProxyResponse, error) {
		timeoutCtx, cancel := context.WithTimeout(ctx, 28500*time.Millisecond)
		defer cancel()

		type result struct {
			Response *events.APIGatewayProxyResponse
			Error    error
		}

		resultChan := make(chan result, 1)

		go func() {
			response, err := function(timeoutCtx, request)
			resultChan <- result{
				Response: response,
				Error:    err,
			}
		}()

		select {
		case res := <-resultChan:
			return res.Response, res.Error
		case <-timeoutCtx.Done():
			return Response(int(http.StatusGatewayTimeout), "Request timed out")
		}
	}
}

func ResponseWithHeaders(statusCode int, body string, headers map[string]string) (*events.APIGatewayProxyResponse, error) {
	return &events.APIGatewayProxyResponse{
		StatusCode: statusCode,
		Body:       body,
		Headers:    headers,
	}, nil
}

func Response(statusCode int, body string) (*events.APIGatewayProxyResponse, error) {
	return ResponseWithHeaders(statusCode, body, nil)
}

func JsonResponse(statusCode int, data any) (*events.APIGatewayProxyResponse, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		log.Printf("Error marshalling JSON response: %v", err)
		return Response(500, "Internal Error")
	}
	return ResponseWithHeaders(statusCode, string(jsonData), map[string]string{
		"Content-Type": "application/json",
	})
}
