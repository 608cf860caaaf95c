package storage

var SplitEndpoint = splitEndpoint
