package core

import (
	"sync"

	"github.com/eapache/queue"
)

// Answer computes a stubbed response from the invocation that triggered it.
type Answer func(inv Invocation) []any

// Invocation describes the call an Answer is responding to.
type Invocation struct {
	Target string
	Method string
	Args   []any
}

// Stub binds responses to calls of one method whose arguments pass Validator.
// Responses are consumed in the order they were added; the last one is reused
// for every further matching call.
type Stub struct {
	Target      string
	Method      string
	Validator   func([]any) error
	Description string

	mu        sync.Mutex
	responses *queue.Queue
}

// ThenAnswer adds a response computed by answer at call time.
func (s *Stub) ThenAnswer(answer Answer) *Stub {
	s.push(response{kind: answerResponse, answer: answer})

	return s
}

// ThenCallReal adds a response that runs the real method. It only has an
// effect on spies; a mock has no real method and returns zero values.
func (s *Stub) ThenCallReal() *Stub {
	s.push(response{kind: realResponse})

	return s
}

// ThenPanic adds a response that panics with value.
func (s *Stub) ThenPanic(value any) *Stub {
	s.push(response{kind: panicResponse, panicValue: value})

	return s
}

// ThenReturn adds a response returning values.
func (s *Stub) ThenReturn(values ...any) *Stub {
	s.push(response{kind: returnResponse, values: values})

	return s
}

func (s *Stub) matches(target, method string, args []any) bool {
	return s.Target == target && s.Method == method && s.Validator(args) == nil
}

// next returns the response for the current call, advancing the queue unless
// only the final response is left.
func (s *Stub) next() response {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.responses.Length() {
	case 0:
		return response{kind: zeroResponse}
	case 1:
		resp, _ := s.responses.Peek().(response)

		return resp
	default:
		resp, _ := s.responses.Remove().(response)

		return resp
	}
}

func (s *Stub) push(resp response) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.responses.Add(resp)
}

// unexported enums.
const (
	zeroResponse responseKind = iota
	returnResponse
	panicResponse
	answerResponse
	realResponse
)

type response struct {
	kind       responseKind
	values     []any
	panicValue any
	answer     Answer
}

// resolve produces the return values for inv, panicking for panic responses.
func (r response) resolve(inv Invocation, real func() []any) []any {
	switch r.kind {
	case returnResponse:
		return r.values
	case panicResponse:
		panic(r.panicValue)
	case answerResponse:
		return r.answer(inv)
	case realResponse:
		if real != nil {
			return real()
		}

		return nil
	default:
		return nil
	}
}

type responseKind int

func (k responseKind) String() string {
	switch k {
	case returnResponse:
		return "return"
	case panicResponse:
		return "panic"
	case answerResponse:
		return "answer"
	case realResponse:
		return "real"
	default:
		return "zero"
	}
}

func newStub(target, method string, validator func([]any) error, description string) *Stub {
	return &Stub{
		Target:      target,
		Method:      method,
		Validator:   validator,
		Description: description,
		responses:   queue.New(),
	}
}
