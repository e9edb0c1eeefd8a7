// Package api defines the wire messages of the pricewise RPC services.
//
// Messages travel as JSON over the Connect protocol (see Codec); there is no
// protobuf schema. Field names are camelCase on the wire.
//
// Services:
//   - pricewise.v1.PricingService: products, roles and the command dispatcher
//   - pricewise.v1.ExportService: PNG export of a product card or chart
//   - pricewise.v1.AuthService: shared-password gate
package api
