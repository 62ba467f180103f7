// Package runner is the file pipeline behind the generate command: it reads
// an ApiDoc endpoint document, converts every endpoint and writes all
// declarations into one file.
//
//	result := runner.Run(ctx, runner.Parameters{
//		Source: "apidoc/api_data.json",
//		Output: "src/types",
//		Name:   "api.d.ts",
//	})
//	if result.Code != runner.Success {
//		log.Fatal(result.Message)
//	}
//
// Run reports failures through Result rather than an error. The output file
// is written atomically, so a failed run never leaves partial output.
package runner
