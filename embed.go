package main

import _ "embed"

// Built-in page layout, used when no -scene file is given.
//
//go:embed assets/scene.yaml
var defaultSceneYAML []byte
