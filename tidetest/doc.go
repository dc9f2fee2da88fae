/*
Package tidetest provides test doubles for the interfaces the framework
defines. Use them instead of writing a new mock in every test.
*/
package tidetest
