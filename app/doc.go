/*
Package app provides the glue to combine extensions into a working
application: a router that dispatches messages to the registered
handlers, a way to stack decorators on top of the router, and a chain of
genesis initializers.
*/
package app
