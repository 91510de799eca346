package kernel_test

import (
	"errors"
	"fmt"

	"checkout/internal/core/domain/model/kernel"
)

func ExampleUUIDFromString() {
	id, err := kernel.UUIDFromString("{6ba7b810-9dad-11d1-80b4-00c04fd430c8}")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(id)
	// Output: 6ba7b810-9dad-11d1-80b4-00c04fd430c8
}

func ExampleUUID_Validate() {
	var id kernel.UUID
	fmt.Println(errors.Is(id.Validate(), kernel.ErrUUIDIsNotConstructed))
	fmt.Println(kernel.NewUUID().Validate())
	// Output:
	// true
	// <nil>
}
