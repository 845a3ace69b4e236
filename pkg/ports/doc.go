/*
Package ports defines the driven ports (interfaces) for the Rosetta catalog.

These interfaces decouple the catalog core from external implementations,
allowing topics to be sourced from memory, files, or any other backend, and
rendered documents to be cached anywhere.

# Key Interfaces

  - CatalogLoader: Responsible for loading raw topic definitions (e.g., from Loam or Memory).
  - Watchable: Optional loader capability signaling that the source changed.
  - RenderCache: Responsible for caching rendered documents by format and content digest.
*/
package ports
