package auth

var ParseJWT = parseJWT
