// Package netplan assembles and serializes the generated network
// configuration document.
//
// The document is a netplan-style YAML tree (schema version 2) with one
// fragment per active interface. Fragments are built by pure constructor
// functions, combined by the Assembler and rendered by the Serializer into
// the downloadable 50-cloud-init.yaml artifact.
//
// # Pipeline
//
//	selections -> Assembler.Assemble -> Document -> Serializer.Artifact -> bytes
//
// Assembly is all-or-nothing: the assembler validates the whole selection
// set first and never emits a partial document. The serializer performs no
// validation of its own; a document that came out of the assembler is by
// invariant well-formed.
package netplan
