package main

import "github.com/sh5080/vectify-go/pkg/serverless"

func main() {
	serverless.LambdaMain()
}
