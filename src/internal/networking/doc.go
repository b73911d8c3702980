// Package networking discovers the host's network links via netlink.
//
// Discovery is advisory only: it feeds the `interfaces` CLI command and the
// GET /api/v1/interfaces endpoint so the presentation layer can prefill
// device names. The document engine itself never touches the operating
// system; applying the generated configuration is out of scope.
package networking
