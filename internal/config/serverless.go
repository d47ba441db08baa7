package config

import (
	"os"
	"strings"
	"sync"
)

// ServerlessConfig holds serverless-specific configuration.
type ServerlessConfig struct {
	IsLambda     bool
	FunctionName string
	Region       string
	HandlerName  string
}

var (
	serverlessConfig *ServerlessConfig
	serverlessOnce   sync.Once
)

// GetServerlessConfig returns the serverless configuration, resolved once
// per process.
func GetServerlessConfig() *ServerlessConfig {
	serverlessOnce.Do(func() {
		serverlessConfig = &ServerlessConfig{
			IsLambda:     isRunningInLambda(),
			FunctionName: os.Getenv("AWS_LAMBDA_FUNCTION_NAME"),
			Region:       os.Getenv("AWS_REGION"),
			HandlerName:  resolveHandlerName(),
		}
	})
	return serverlessConfig
}

// isRunningInLambda detects if the application is running in AWS Lambda.
func isRunningInLambda() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}

// IsServerlessMode returns true if running in serverless mode.
func IsServerlessMode() bool {
	return GetServerlessConfig().IsLambda
}

// GetDeploymentMode returns the current deployment mode.
func GetDeploymentMode() string {
	if IsServerlessMode() {
		return "serverless"
	}
	return "server"
}

// resolveHandlerName picks the dispatched operation name: HANDLER_NAME
// first, then the Lambda function name, then "get".
func resolveHandlerName() string {
	name := os.Getenv("HANDLER_NAME")
	if name == "" {
		name = os.Getenv("AWS_LAMBDA_FUNCTION_NAME")
	}
	if name == "" {
		name = "get"
	}
	return strings.ToLower(name)
}
