/*
Package gconf provides a typed, global configuration storage.

Each extension keeps its configuration as a single entity, stored in the
database under a well known key derived from the package name. The
configuration is initialized from the genesis and can later be updated by
the extension's own handlers.
*/
package gconf
