package metrics

const Namespace = "collection_console"
