// Package io exports diagram descriptions as JSON.
//
// # JSON Format
//
//	{
//	  "name": "topology",
//	  "format": "png",
//	  "style": {"font_size": 35},
//	  "clusters": [
//	    {"name": "K8s cluster", "direction": "TB", "nodes": ["proxy", "gitea", "drone"]}
//	  ],
//	  "nodes": [
//	    {"id": "proxy", "label": "Traefik Ingress", "category": "ingress", "cluster": "K8s cluster"}
//	  ],
//	  "edges": [
//	    {"from": "smallstep", "to": "proxy", "label": "ACME", "bidirectional": true}
//	  ]
//	}
//
// Nodes and edges appear in declaration order. Disabled style options are
// exported with their enabled flag so the full configuration is visible.
//
// The format is for inspection and tooling. There is no importer: the
// topology is defined in code.
package io
