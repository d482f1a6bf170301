// Package cookie provides HMAC-signed cookies for keying sessions to a
// user agent. Values are tamper-evident, not encrypted; do not store
// secrets in them.
package cookie
