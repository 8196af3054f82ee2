package pipeline

import (
	"context"
)

const streamBufferSize = 8

// Take forwards at most n items and then closes its output.
func Take[T any](ctx context.Context, n int, inputStream <-chan T) <-chan T {
	outputStream := make(chan T, streamBufferSize)
	go func() {
		defer close(outputStream)

		for i := 0; i < n; i++ {
			select {
			case <-ctx.Done():
				return
			case item, ok := <-inputStream:
				if !ok {
					return
				}
				select {
				case <-ctx.Done():
					return
				case outputStream <- item:
				}
			}
		}
	}()

	return outputStream
}

// Seq emits 0, 1, ..., n-1.
func Seq(ctx context.Context, n int) <-chan int {
	outputStream := make(chan int, streamBufferSize)
	go func() {
		defer close(outputStream)
		for i := 0; i < n; i++ {
			select {
			case <-ctx.Done():
				return
			case outputStream <- i:
			}
		}
	}()

	return outputStream
}

// ToSlice drains inputStream until it closes or ctx is done.
func ToSlice[T any](ctx context.Context, inputStream <-chan T) []T {
	output := make([]T, 0)
	for {
		select {
		case <-ctx.Done():
			return output
		case item, ok := <-inputStream:
			if !ok {
				return output
			}
			output = append(output, item)
		}
	}
}
