package http

// Handler produces a response for the request. The returned response is usually obtained
// via Request.Respond, so the memory is reused.
type Handler func(request *Request) *Response
