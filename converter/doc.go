// Package converter turns ApiDoc endpoint descriptors into TypeScript
// declarations.
//
// Each endpoint yields up to three declaration groups named after the
// endpoint: <Base>Request, <Base>Response and <Base>Error. The base name is
// the endpoint name in PascalCase, else its group and title, else its
// method and path ("GET /users/:id" becomes GetUsersId).
//
//	endpoints, err := parser.New().ParseEndpointsFile("api_data.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	conv, err := converter.New(nil, converter.WithWorkers(4))
//	if err != nil {
//		log.Fatal(err)
//	}
//	results, err := conv.Convert(ctx, endpoints)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Print(converter.Join(results))
//
// Endpoints are converted concurrently with at most WithWorkers in flight.
// Results always come back in input order, and the first failing endpoint
// aborts the batch.
package converter
