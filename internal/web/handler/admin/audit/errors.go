package audit

import "github.com/pkg/errors"

// ErrAuditLoadFailed is the fallback when the audit log cannot be fetched.
var ErrAuditLoadFailed = errors.New("Failed to load audit log")
