package tree

import (
	"errors"
	"fmt"
)

// Kind tags an *Error. The set of kinds is closed.
type Kind uint8

// Error kinds.
const (
	NoKind                 Kind = iota // not an error of this package
	NoDataReceived                     // SetData called with absent input
	DataAlreadyInitialized             // SetData called on an initialized tree
	WrongFormat                        // input is not a sequence, or a record is malformed
	ObjectNotFound                     // no root node present
	NodeNotFound                       // no node with the requested id
	ParentNotFound                     // a node's declared parent does not exist
	NoValue                            // strict value access on a node without value
)

var kindNames = [...]string{
	NoKind:                 "NoKind",
	NoDataReceived:         "NoDataReceived",
	DataAlreadyInitialized: "DataAlreadyInitialized",
	WrongFormat:            "WrongFormat",
	ObjectNotFound:         "ObjectNotFound",
	NodeNotFound:           "NodeNotFound",
	ParentNotFound:         "ParentNotFound",
	NoValue:                "NoValue",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Error is the error type returned by all tree operations. Object carries
// the context of the failure: the id which could not be resolved, the
// name of the missing object, or the index of a malformed record.
type Error struct {
	Kind   Kind
	Object any
	msg    string
}

func (e *Error) Error() string {
	if e.Object == nil {
		return e.msg
	}
	return fmt.Sprintf("%s: %v", e.msg, e.Object)
}

// Is reports whether target is an *Error of the same kind. This lets
// clients test with errors.Is(err, tree.ErrNodeNotFound), regardless of
// the object payload.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

// Template errors, one for each kind. They are meant as targets for
// errors.Is and are never returned directly.
var (
	ErrNoDataReceived         = &Error{Kind: NoDataReceived, msg: "no data received"}
	ErrDataAlreadyInitialized = &Error{Kind: DataAlreadyInitialized, msg: "data has already been initialized"}
	ErrWrongFormat            = &Error{Kind: WrongFormat, msg: "records not in format: id, parent, value"}
	ErrObjectNotFound         = &Error{Kind: ObjectNotFound, msg: "object not found"}
	ErrNodeNotFound           = &Error{Kind: NodeNotFound, msg: "id not found"}
	ErrParentNotFound         = &Error{Kind: ParentNotFound, msg: "parent not found"}
	ErrNoValue                = &Error{Kind: NoValue, msg: "no value found"}
)

var templates = [...]*Error{
	NoDataReceived:         ErrNoDataReceived,
	DataAlreadyInitialized: ErrDataAlreadyInitialized,
	WrongFormat:            ErrWrongFormat,
	ObjectNotFound:         ErrObjectNotFound,
	NodeNotFound:           ErrNodeNotFound,
	ParentNotFound:         ErrParentNotFound,
	NoValue:                ErrNoValue,
}

func newError(kind Kind, object any) *Error {
	return &Error{Kind: kind, Object: object, msg: templates[kind].msg}
}

// wrongFormat reports a malformed input, with a detail message.
func wrongFormat(format string, args ...any) *Error {
	return &Error{
		Kind: WrongFormat,
		msg:  ErrWrongFormat.msg + ": " + fmt.Sprintf(format, args...),
	}
}

// KindOf returns the kind of err, or NoKind if err is not (wrapping) an
// *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return NoKind
}
