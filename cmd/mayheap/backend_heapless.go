//go:build heapless

package main

// backendLabel names the storage engine this binary was built with.
const backendLabel = "heapless"
