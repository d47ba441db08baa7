package main

import (
	"context"
	"net/http"

	"github.com/aws/aws-lambda-go/events"
	awslambda "github.com/aws/aws-lambda-go/lambda"

	"car-registry-api/internal/config"
	"car-registry-api/internal/handlers"
	"car-registry-api/pkg/lambda"
)

// handler dispatches one car operation per deployed function. The operation
// is selected by HANDLER_NAME (falling back to the Lambda function name),
// matching the routes of the HTTP deployment.
func handler(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	container, err := lambda.GetConnectionManager().GetContainer(ctx)
	if err != nil {
		return handlers.ErrorProxyResponse(http.StatusInternalServerError, "Internal Server Error"), nil
	}

	carHandler := handlers.NewCarHandler(container.CarRepository, container.Logger)
	req := lambda.FromAPIGatewayRequest(event)

	// Preflight requests short-circuit regardless of the configured
	// operation.
	if event.HTTPMethod == http.MethodOptions {
		resp, _ := carHandler.HandleOptions(ctx, req)
		return resp.ToAPIGatewayResponse(), nil
	}

	var resp *lambda.Response
	name := config.GetServerlessConfig().HandlerName

	switch name {
	case "create", "createcar":
		resp, err = carHandler.HandleCreate(ctx, req)
	case "list", "getall", "getallcars":
		resp, err = carHandler.HandleList(ctx, req)
	case "get", "getcar":
		resp, err = carHandler.HandleGet(ctx, req)
	case "update":
		resp, err = carHandler.HandleUpdate(ctx, req)
	case "delete", "remove":
		resp, err = carHandler.HandleDelete(ctx, req)
	case "options":
		resp, err = carHandler.HandleOptions(ctx, req)
	default:
		return handlers.ErrorProxyResponse(http.StatusInternalServerError, "Unknown handler "+name), nil
	}

	if err != nil {
		container.Logger.WithError(err).Error("Handler failed")
		return handlers.ErrorProxyResponse(http.StatusInternalServerError, "Internal Server Error"), nil
	}

	return resp.ToAPIGatewayResponse(), nil
}

func main() {
	awslambda.Start(handler)
}
