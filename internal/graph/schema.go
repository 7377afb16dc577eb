package graph

// Schema is the storefront's GraphQL service surface.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type Query {
		items(search: String, skip: Int, first: Int): [Item!]!
		item(id: ID!): Item
		itemsConnection(search: String): ItemsConnection!
		me: User
		users: [User!]!
		order(id: ID!): Order!
		orders: [Order!]!
	}

	type Mutation {
		createItem(title: String!, description: String!, price: Int!, image: String, largeImage: String): Item!
		updateItem(id: ID!, title: String, description: String, price: Int): Item!
		deleteItem(id: ID!): Item!
		signup(email: String!, name: String!, password: String!): User!
		signin(email: String!, password: String!): User!
		signout: SuccessMessage!
		requestReset(email: String!): SuccessMessage!
		resetPassword(resetToken: String!, password: String!, confirmPassword: String!): User!
		updatePermissions(permissions: [Permission!]!, userId: ID!): User!
		addToCart(id: ID!): CartItem!
		removeFromCart(id: ID!): CartItem!
		createOrder(token: String!): Order!
	}

	enum Permission {
		ADMIN
		USER
		ITEMCREATE
		ITEMUPDATE
		ITEMDELETE
		PERMISSIONUPDATE
	}

	type User {
		id: ID!
		name: String!
		email: String!
		permissions: [Permission!]!
		cart: [CartItem!]!
		orders: [Order!]!
	}

	type Item {
		id: ID!
		title: String!
		description: String!
		price: Int!
		image: String
		largeImage: String
	}

	type CartItem {
		id: ID!
		quantity: Int!
		item: Item
		user: User!
	}

	type Order {
		id: ID!
		total: Int!
		charge: String!
		items: [OrderItem!]!
		user: User!
		createdAt: String!
	}

	type OrderItem {
		id: ID!
		title: String!
		description: String!
		price: Int!
		image: String
		largeImage: String
		quantity: Int!
	}

	type ItemsConnection {
		aggregate: Aggregate!
	}

	type Aggregate {
		count: Int!
	}

	type SuccessMessage {
		message: String!
	}
`
