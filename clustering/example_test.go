package clustering_test

import (
	"fmt"
	"strings"

	"github.com/varbio/varbio/clustering"
)

// ExampleParse shows a cluster declared across non-contiguous lines.
func ExampleParse() {
	text := "cluster1\tg1\tg2\n" +
		"cluster2\tg3\n" +
		"cluster1\tg4\n"
	c, _, err := clustering.Parse(text)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, name := range c.Names() {
		members, _ := c.Members(name)
		fmt.Println(name, strings.Join(members, ","))
	}
	// Output:
	// cluster1 g1,g2,g4
	// cluster2 g3
}
