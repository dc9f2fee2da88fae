/*
Package orm provides an easy to use db wrapper.

It breaks the state space into prefixed sections called buckets. Each
bucket contains only one type of object, addressed by a primary key.
Buckets operate on models, entities that know how to serialize and
validate themselves.
*/
package orm
