// # internal/diag/samples.go
package diag

// Minimal per-language sources that exercise every capability flag.
var samples = map[string]string{
	"go": `package sample

import "fmt"

// Greet prints a greeting.
func Greet(name string) {
	fmt.Println(name)
}

type Pair struct {
	A int
}
`,
	"python": `import os

class Walker:
    """Walks a tree."""

    def step(self):
        return os.sep
`,
	"javascript": `import axios from "axios";

// Client wraps the transport.
class Client {
  send() {
    return axios;
  }
}

function helper() {
  return 1;
}
`,
	"java": `package sample;

import java.util.List;

// Box holds one value.
public class Box {
    public int get() {
        return 1;
    }
}
`,
	"csharp": `using System;

/// <summary>Box holds one value.</summary>
public sealed class Box
{
    public int Get()
    {
        return 1;
    }
}
`,
	"c": `#include <stdio.h>

#define MAX_ITEMS 8

// add sums two values.
static int add(int a, int b) {
    return a + b;
}

struct point {
    int x;
};
`,
	"rust": `use std::fmt;

/// Node in the tree.
pub struct Node {
    id: u32,
}

pub fn run() -> u32 {
    1
}
`,
	"php": `<?php

namespace Sample;

use App\Support\Helper;

// Box holds one value.
class Box
{
    public function get(): string
    {
        return 'one';
    }
}
`,
	"ruby": `require "json"

# Box holds one value.
class Box
  def get
    1
  end
end
`,
}
