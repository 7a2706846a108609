package pathutil_test

import (
	"fmt"

	"newsdesk/internal/handler/http/pathutil"
)

func ExampleNormalizePath() {
	fmt.Println(pathutil.NormalizePath("/news/123"))
	fmt.Println(pathutil.NormalizePath("/news/456?x=1"))
	fmt.Println(pathutil.NormalizePath("/news"))
	fmt.Println(pathutil.NormalizePath("/health"))

	// Output:
	// /news/:id
	// /news/:id
	// /news
	// /health
}

func ExampleExtractID() {
	id, err := pathutil.ExtractID("/news/42", "/news/")
	fmt.Println(id, err)

	_, err = pathutil.ExtractID("/news/abc", "/news/")
	fmt.Println(err)

	// Output:
	// 42 <nil>
	// invalid id
}
