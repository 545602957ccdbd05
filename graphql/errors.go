package graphql

import "fmt"

// RequestError is a transport failure: the backend function could not be
// reached, returned an invoke error, or produced an unparseable envelope.
type RequestError struct {
	EndpointId string
	Funct      string
	Err        error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("error requesting funct %s on endpoint %s\nERROR=%v", e.Funct, e.EndpointId, e.Err)
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// ResponseError is raised when the GraphQL envelope carries a non-empty
// errors array. Message holds the first error's message.
type ResponseError struct {
	Funct     string
	Operation string
	Message   string
}

func (e *ResponseError) Error() string {
	return fmt.Sprintf("errors in %s response from funct %s: %s", e.Operation, e.Funct, e.Message)
}
