/*
Package x contains some standard extensions.

Extensions implement common functionality (ledger accounts, cross domain
transfers) and are easily combined with custom extensions in an
application. The files in this top level package provide the glue that the
extensions need to be combined, like the Authenticator every handler is
gated by.
*/
package x
